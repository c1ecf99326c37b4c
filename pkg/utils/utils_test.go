package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), parsed)

	zero, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	_, err = ParseDate("15/03/2025")
	assert.Error(t, err)
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2025-02-27", 3)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-02", got)
}

func TestMonthOf(t *testing.T) {
	assert.Equal(t, "2025-03", MonthOf("2025-03-15"))
	assert.Equal(t, "", MonthOf(""))
}

func TestGenerateCode(t *testing.T) {
	code := GenerateCode("so")
	assert.Regexp(t, `^SO-[0-9A-Z]{8}$`, code)
	assert.NotEqual(t, code, GenerateCode("so"))
}

func TestGenerateCID(t *testing.T) {
	cid := GenerateCID("Đại lý Minh", "0901234567", "")
	assert.Regexp(t, `^KH-[0-9A-Z]{6}$`, cid)
	// Cùng thông tin liên hệ luôn cho cùng một mã
	assert.Equal(t, cid, GenerateCID("Đại lý Minh", "0901234567", ""))
	assert.NotEqual(t, cid, GenerateCID("Khác", "0901234567", ""))
}
