package cdt

import "github.com/pkg/errors"

// Threading errors through the cavity, corridor and refinement recursions
// would complicate every signature in this package. Instead internal code
// panics, and the public entry points recover to convert to an error.

type GeometryPanic error

// Panic with a GeometryPanic.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

// HandleGeometryPanicRecover converts a recovered geometry panic into its
// error and re-panics anything else. Call it with the result of recover().
func HandleGeometryPanicRecover(r interface{}) error {
	if r != nil {
		if geometryErr, ok := r.(GeometryPanic); ok {
			return geometryErr
		}
		panic(r)
	}
	return nil
}
