package outrigger

const MAJOR_VERSION = 0
const MINOR_VERSION = 1
