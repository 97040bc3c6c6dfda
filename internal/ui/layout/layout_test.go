package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(79, 30))
	assert.True(t, IsTooSmall(100, 23))
	assert.False(t, IsTooSmall(80, 24))
}

func TestRenderHeader_Progress(t *testing.T) {
	h := RenderHeader("Questionário", 40, 100)
	assert.Contains(t, h, AppName)
	assert.Contains(t, h, "Questionário")
	assert.Contains(t, h, "40% concluído")

	h = RenderHeader("Resultado", -1, 100)
	assert.NotContains(t, h, "concluído")
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("x", -1, 80)
	footer := RenderFooter([]KeyHint{{Key: "Esc", Description: "Voltar"}}, 80)
	frame := RenderFrame(header, "body", footer, 80, 24)

	assert.Equal(t, 24, lipgloss.Height(frame))
	assert.True(t, strings.Contains(frame, "Voltar"))
}

func TestRenderMinSizeMessage(t *testing.T) {
	assert.Contains(t, RenderMinSizeMessage(60, 20), "Atual: 60 x 20")
}
