// Package variables describes the climate variables the debiasers carry
// default settings for.
//
// Variables follow the CMIP naming convention (tas, pr, tasmax, ...). The
// descriptor tables are read-only process-wide data; nothing in the library
// mutates them after initialization.
package variables
