package vecmap

// ProgressFunc observes render progress. It is invoked with the
// current item index, the total item count, the reporting step
// granularity, and a phase label. A final call per phase passes -1 as
// the current index.
//
// Progress reporting is purely observational: it must not influence
// output, and no return value is consumed. A nil ProgressFunc disables
// reporting.
type ProgressFunc func(current, total, step int, phase string)
