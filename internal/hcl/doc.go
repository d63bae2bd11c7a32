// Package hcl reads ged2dot options from HCL configuration files.
//
// A file holds at most one ged2dot block whose attributes are the option
// keys. Expressions are evaluated with an env object exposing the process
// environment:
//
//	ged2dot {
//	  input       = "${env.HOME}/family/tree.ged"
//	  output      = "tree.svg"
//	  familydepth = 4
//	  relpath     = true
//	}
package hcl
