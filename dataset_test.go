package addrfind_test

import (
	"testing"

	"github.com/mishra-anubhav/addrfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataset_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts dataset with URL column", func(t *testing.T) {
		t.Parallel()

		d := &addrfind.Dataset{Columns: []string{"Name", "URL"}}
		require.NoError(t, d.Validate())
	})

	t.Run("rejects dataset without URL column", func(t *testing.T) {
		t.Parallel()

		d := &addrfind.Dataset{Columns: []string{"Name", "Website"}}
		err := d.Validate()
		require.Error(t, err)
		assert.Equal(t, addrfind.EINVALID, addrfind.ErrorCode(err))
	})
}

func TestDataset_URLs(t *testing.T) {
	t.Parallel()

	d := &addrfind.Dataset{
		Columns: []string{"Name", "URL"},
		Rows: [][]string{
			{"Acme", "https://acme.test"},
			{"Short"},
			{"Beta", "beta.test"},
		},
	}

	assert.Equal(t, []string{"https://acme.test", "", "beta.test"}, d.URLs())
}
