package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCSVSinkAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")
	sink := NewCSVSink(path)

	require.NoError(t, sink.Append([]string{"alice", "hash-1", "admin"}))
	require.NoError(t, sink.Append([]string{"bob", "hash-2", "client"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "alice,hash-1,admin\nbob,hash-2,client\n", string(data))
}

func TestCSVSinkRewriteReplacesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products_backup.csv")
	sink := NewCSVSink(path)

	require.NoError(t, sink.Append([]string{"Pen", "Stationery", "2.00", "10"}))
	require.NoError(t, sink.Rewrite(
		[]string{"Product ID", "Name", "Category", "Price", "Stock"},
		[][]string{{"2", "Notebook", "Stationery", "5.50", "4"}},
	))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t,
		"Product ID,Name,Category,Price,Stock\n2,Notebook,Stationery,5.50,4\n",
		string(data))
}

func TestCSVSinkRewriteEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales_backup.csv")
	sink := NewCSVSink(path)

	require.NoError(t, sink.Rewrite([]string{"Sale ID"}, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "Sale ID\n", string(data))
}
