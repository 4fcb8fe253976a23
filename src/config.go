package outrigger

/*------------------------------------------------------------------
 *
 * Purpose:   	Configuration file handling.
 *
 * Description:	The configuration is an INI file with one section per
 *		rig.  The rest of the daemon only ever sees it through
 *		the per-section lookups below, so nothing outside this
 *		file cares how the values got there.
 *
 *		Example:
 *
 *			[shack]
 *			rig = TS-940S
 *			rigctld_address = 0.0.0.0
 *			rigctld_port = 4532
 *			port = /dev/ttyU0
 *
 *---------------------------------------------------------------*/

import (
	"gopkg.in/ini.v1"
)

type config_dict struct {
	file *ini.File
}

/*-------------------------------------------------------------------
 *
 * Name:        load_config
 *
 * Purpose:	Parse the INI file named on the command line.
 *
 * Returns: 	Dictionary handle, or nil if the file could not be
 *		read or parsed.
 *
 *--------------------------------------------------------------------*/

func load_config(path string) *config_dict {
	var f, err = ini.Load(path)
	if err != nil {
		or_error("Unable to parse %s: %s", path, err)
		return nil
	}

	return &config_dict{file: f}
}

/* Section names, one per rig.  The parser's implicit default section
 * is not a rig. */

func config_sections(d *config_dict) []string {
	var ret []string
	for _, name := range d.file.SectionStrings() {
		if name == ini.DefaultSection {
			continue
		}
		ret = append(ret, name)
	}
	return ret
}

func get_string(d *config_dict, section string, key string, dflt string) string {
	if d == nil || section == "" || key == "" {
		return dflt
	}
	var sec = d.file.Section(section)
	if !sec.HasKey(key) {
		return dflt
	}
	return sec.Key(key).String()
}

func get_int(d *config_dict, section string, key string, dflt int) int {
	if d == nil || section == "" || key == "" {
		return dflt
	}
	var sec = d.file.Section(section)
	if !sec.HasKey(key) {
		return dflt
	}
	var v, err = sec.Key(key).Int()
	if err != nil {
		return dflt
	}
	return v
}

/* Store dflt under section:key unless the user already set it.
 * Rig model files use this to fill in their serial defaults. */

func set_default(d *config_dict, section string, key string, dflt string) int {
	if d == nil || section == "" || key == "" {
		return -1
	}
	var sec = d.file.Section(section)
	if !sec.HasKey(key) {
		var _, err = sec.NewKey(key, dflt)
		if err != nil {
			return -1
		}
	}
	return 0
}
