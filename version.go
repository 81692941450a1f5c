package svgtint

// Version is the current release of the svgtint module.
var Version = "0.1.0"
