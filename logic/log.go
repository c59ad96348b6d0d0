package logic

import "github.com/golang/glog"

// fatalf reports a contract violation — an out-of-range handle or a
// mismatched downcast — the same way the teacher's bus decoders treat
// an unreachable address: these are programming errors in the caller,
// not conditions the engine can recover from or report through
// propagate's boolean result (§7).
func fatalf(format string, args ...interface{}) {
	glog.Fatalf(format, args...)
}

// traceIntern logs, at verbosity 2, whether build() reused an existing
// componentSet or interned a new one for a wire's reader list. Off by
// default; useful when debugging why an unrelated wire's change is
// dirtying more components than expected.
func traceIntern(readers int, id int, reused bool) {
	if glog.V(2) {
		if reused {
			glog.Infof("logic: wire with %d readers reuses componentSet %d", readers, id)
		} else {
			glog.Infof("logic: wire with %d readers interns new componentSet %d", readers, id)
		}
	}
}
