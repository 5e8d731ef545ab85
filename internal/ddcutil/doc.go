// Package ddcutil builds and runs ddcutil invocations for the monitor-cli tool.
//
// All display-control operations are performed via os/exec calls to the
// ddcutil binary. Arguments follow ddcutil's convention:
//
//	--bus=<N> getvcp <code>
//	--bus=<N> setvcp <code> <value>
//	--bus=<N> setvcp <code> + <delta>
//	--bus=<N> setvcp <code> - <delta>
//
// The child inherits the terminal's standard streams. Its exit status is
// reported back to the caller but never treated as an error; only a failure
// to start the binary is.
package ddcutil
