package textract_test

import (
	"testing"

	"github.com/fwojciec/textract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	t.Parallel()

	doc := &textract.Document{Body: "<p>Hi</p>", Text: "Hi"}

	rec := textract.NewRecord("page.html", "body", doc)

	assert.Equal(t, "page.html", rec.Source)
	assert.Equal(t, "body", rec.Backend)
	assert.Equal(t, doc, rec.Document())
}

func TestRecord_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires source", func(t *testing.T) {
		t.Parallel()

		rec := &textract.Record{Text: "Hi"}

		err := rec.Validate()
		require.Error(t, err)
		assert.Equal(t, textract.EINVALID, textract.ErrorCode(err))
	})

	t.Run("requires text", func(t *testing.T) {
		t.Parallel()

		rec := &textract.Record{Source: "page.html", Text: " "}

		err := rec.Validate()
		require.Error(t, err)
		assert.Equal(t, textract.EINVALID, textract.ErrorCode(err))
	})
}
