package partials

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★★★", stars(5))
	assert.Equal(t, "★★★☆☆", stars(3))
	assert.Equal(t, "☆☆☆☆☆", stars(-1))
	assert.Equal(t, "★★★★★", stars(9))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "АП", initials("Анна Петрова"))
	assert.Equal(t, "ЕИ", initials("елена иванова сергеевна"))
	assert.Equal(t, "М", initials("Михаил"))
	assert.Equal(t, "", initials("   "))
}
