package domain

// TaskResult is the outcome of one extraction task.
type TaskResult struct {
	Desc  FileDescriptor
	Table *Table // filled in case of a success
	Err   error  // filled in case of an error
}

func (r TaskResult) Failed() bool { return r.Err != nil }
