package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailFormatValid(t *testing.T) {
	valid := []string{"ana@salao.com", "ana.souza+agenda@salao.com.br"}
	invalid := []string{"", "ana", "ana@", "ana@localhost", "Ana <ana@salao.com>", "ana@@salao.com"}

	for _, e := range valid {
		assert.True(t, IsEmailFormatValid(e), e)
	}
	for _, e := range invalid {
		assert.False(t, IsEmailFormatValid(e), e)
	}
}

func TestIsEmailDomainValid_Malformed(t *testing.T) {
	assert.False(t, IsEmailDomainValid("sem-arroba"))
	assert.False(t, IsEmailDomainValid("ana@"))
}
