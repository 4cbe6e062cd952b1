package detector_test

import (
	"testing"

	"github.com/solwatch/solwatch/compiler"
	"github.com/solwatch/solwatch/detector"
	"github.com/solwatch/solwatch/report"
	"github.com/solwatch/solwatch/workspace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

// loadTxtarFile returns the named section's bytes from a txtar archive,
// failing the test if the section is absent.
func loadTxtarFile(t *testing.T, archivePath, name string) []byte {
	t.Helper()
	ar, err := txtar.ParseFile(archivePath)
	require.NoError(t, err)
	for _, f := range ar.Files {
		if f.Name == name {
			return f.Data
		}
	}
	t.Fatalf("txtar archive %s has no section %q", archivePath, name)
	return nil
}

// TestUnusedImport_S4 is spec scenario S4: an import directive whose
// exported symbol is referenced in one source unit and not in another,
// bundled as a txtar archive since it genuinely needs two source files.
func TestUnusedImport_S4(t *testing.T) {
	const archive = "testdata/unused_import_s4.txtar"
	exporter := loadTxtarFile(t, archive, "Exporter.sol")

	t.Run("referenced import is not flagged", func(t *testing.T) {
		importer := loadTxtarFile(t, archive, "Importer.used.sol")
		group := compiler.CompilationGroup{
			Sources: map[string]string{"Exporter.sol": "", "Importer.used.sol": ""},
			ASTFiles: map[string]compiler.AstSourceFile{
				"Exporter.sol":      {AstJSON: exporter},
				"Importer.used.sol": {AstJSON: importer},
			},
		}
		w, err := workspace.Ingest(group, nil)
		require.NoError(t, err)

		d := &detector.UnusedImport{}
		found, err := d.Detect(w)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("unreferenced import is flagged", func(t *testing.T) {
		importer := loadTxtarFile(t, archive, "Importer.unused.sol")
		group := compiler.CompilationGroup{
			Sources: map[string]string{"Exporter.sol": "", "Importer.unused.sol": ""},
			ASTFiles: map[string]compiler.AstSourceFile{
				"Exporter.sol":        {AstJSON: exporter},
				"Importer.unused.sol": {AstJSON: importer},
			},
		}
		w, err := workspace.Ingest(group, nil)
		require.NoError(t, err)

		d := &detector.UnusedImport{}
		found, err := d.Detect(w)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Len(t, d.Instances(), 1)
		assert.Equal(t, report.SeverityLow, d.Severity())
	})
}
