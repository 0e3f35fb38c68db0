package models

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindTransient, KindOf(errors.New("plain")))
	assert.Equal(t, KindTransient, KindOf(Transient("ocr", errors.New("boom"))))
	assert.Equal(t, KindSchema, KindOf(SchemaErr("classify", errors.New("bad json"))))
	assert.Equal(t, KindPermanent, KindOf(Permanent("ocr", errors.New("404"))))
	assert.Equal(t, KindCancelled, KindOf(context.Canceled))
	assert.Equal(t, KindCancelled, KindOf(fmt.Errorf("stage: %w", context.Canceled)))
}

func TestKindOfWrappedStageError(t *testing.T) {
	err := fmt.Errorf("while filing: %w", SchemaErr("filing", errors.New("bad")))
	assert.Equal(t, KindSchema, KindOf(err))
}

func TestLastErrorText(t *testing.T) {
	assert.Equal(t, "schema: classify: bad json",
		LastErrorText(SchemaErr("classify", errors.New("bad json"))))
	assert.Equal(t, "ocr: boom",
		LastErrorText(Transient("ocr", errors.New("boom"))))
}

func TestIsRepeatedSchemaError(t *testing.T) {
	schemaErr := SchemaErr("classify", errors.New("bad json"))
	prior := "schema: classify: bad json"
	transientPrior := "ocr: boom"

	assert.True(t, IsRepeatedSchemaError(&prior, schemaErr))
	assert.False(t, IsRepeatedSchemaError(nil, schemaErr), "first schema error is not a repeat")
	assert.False(t, IsRepeatedSchemaError(&transientPrior, schemaErr))
	assert.False(t, IsRepeatedSchemaError(&prior, Transient("classify", errors.New("timeout"))))
}
