package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination_Defaults(t *testing.T) {
	page, limit, offset := Pagination(nil, nil)

	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 0, offset)
}

func TestPagination_Offset(t *testing.T) {
	p, l := 3, 20
	page, limit, offset := Pagination(&p, &l)

	assert.Equal(t, 3, page)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 40, offset)
}

func TestPagination_InvalidValuesFallBack(t *testing.T) {
	p, l := 0, -5
	page, limit, offset := Pagination(&p, &l)

	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 0, offset)
}

func TestGenerateCertificateNumber(t *testing.T) {
	number := GenerateCertificateNumber(12, 34)

	assert.True(t, strings.HasPrefix(number, "CERT-12-34-"))
}

func TestGenerateVerificationCode_Unique(t *testing.T) {
	a := GenerateVerificationCode()
	b := GenerateVerificationCode()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
