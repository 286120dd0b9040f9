package addrfind

// URLColumn is the required column name in input datasets.
const URLColumn = "URL"

// Dataset is a tabular input: a header row plus data rows. The URL column
// is required; all other columns are passed through untouched.
type Dataset struct {
	Columns []string
	Rows    [][]string
}

// Validate returns an error if the dataset is structurally unusable.
// A missing URL column is the only fatal, batch-aborting condition.
func (d *Dataset) Validate() error {
	if d.URLColumnIndex() < 0 {
		return Errorf(EINVALID, "dataset must contain a column named %q", URLColumn)
	}
	return nil
}

// URLColumnIndex returns the index of the URL column, or -1 if absent.
func (d *Dataset) URLColumnIndex() int {
	for i, c := range d.Columns {
		if c == URLColumn {
			return i
		}
	}
	return -1
}

// URLs returns the URL column values in row order. Rows shorter than the
// URL column index contribute an empty string, which downstream validation
// rejects as an invalid URL.
func (d *Dataset) URLs() []string {
	idx := d.URLColumnIndex()
	if idx < 0 {
		return nil
	}
	urls := make([]string, 0, len(d.Rows))
	for _, row := range d.Rows {
		if idx < len(row) {
			urls = append(urls, row[idx])
		} else {
			urls = append(urls, "")
		}
	}
	return urls
}

// DatasetReader loads an input dataset from a file.
type DatasetReader interface {
	Read(path string) (*Dataset, error)
}

// DatasetWriter persists batch results as success and failure tables.
type DatasetWriter interface {
	// WriteResults writes the success table (URL, joined addresses) and
	// the failure table (URL, reason) in input order. When dataset is
	// non-nil its non-URL columns are passed through untouched alongside
	// each row.
	WriteResults(path string, dataset *Dataset, result *BatchResult) error
}
