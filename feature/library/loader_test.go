package library

import (
	"testing"

	"shelf-gateway/core/zotero"
	"shelf-gateway/core/zotero/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	client := new(mocks.Client)
	feature := NewFeature(client, zotero.Config{}, zap.NewNop())

	assert.Equal(t, "library", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NotNil(t, feature.Service())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}
