package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUpdateClientRequest_Fields(t *testing.T) {
	fields, code := UpdateClientRequest{
		Name:  strPtr("  Bia Souza "),
		Email: strPtr(" bia@salao.com "),
	}.fields()
	require.Empty(t, code)
	assert.Equal(t, "Bia Souza", fields["name"])
	assert.Equal(t, "bia@salao.com", fields["email"])

	// e-mail vazio limpa o campo
	fields, code = UpdateClientRequest{Email: strPtr("  ")}.fields()
	require.Empty(t, code)
	assert.Equal(t, "", fields["email"])

	_, code = UpdateClientRequest{Name: strPtr("   ")}.fields()
	assert.Equal(t, "invalid_name", code)

	_, code = UpdateClientRequest{Email: strPtr("sem-arroba")}.fields()
	assert.Equal(t, "invalid_email", code)

	_, code = UpdateClientRequest{DateOfBirth: strPtr("15/03/1990")}.fields()
	assert.Equal(t, "invalid_date", code)
}

func TestCleanName(t *testing.T) {
	name, code := cleanName("  Corte  ")
	assert.Equal(t, "Corte", name)
	assert.Empty(t, code)

	_, code = cleanName("\t ")
	assert.Equal(t, "invalid_name", code)
}
