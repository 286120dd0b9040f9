package mock

import "github.com/mishra-anubhav/addrfind"

var _ addrfind.DatasetReader = (*DatasetReader)(nil)

// DatasetReader is a mock implementation of addrfind.DatasetReader.
type DatasetReader struct {
	ReadFn func(path string) (*addrfind.Dataset, error)
}

func (r *DatasetReader) Read(path string) (*addrfind.Dataset, error) {
	return r.ReadFn(path)
}

var _ addrfind.DatasetWriter = (*DatasetWriter)(nil)

// DatasetWriter is a mock implementation of addrfind.DatasetWriter.
type DatasetWriter struct {
	WriteResultsFn func(path string, dataset *addrfind.Dataset, result *addrfind.BatchResult) error
}

func (w *DatasetWriter) WriteResults(path string, dataset *addrfind.Dataset, result *addrfind.BatchResult) error {
	return w.WriteResultsFn(path, dataset, result)
}
