package main

/*------------------------------------------------------------------
 *
 * Purpose:   	Main program for "or-rigctld", the multi-rig control
 *		daemon.  Everything lives in the outrigger package;
 *		this is just the entry point.
 *
 *---------------------------------------------------------------*/

import (
	outrigger "github.com/doismellburning/outrigger/src"
)

func main() {
	outrigger.RigctldMain()
}
