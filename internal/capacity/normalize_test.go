package capacity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"José  Álves-Silva":  "josealvessilva",
		"jose alves silva":   "josealvessilva",
		"MARIA DA SILVA":     "mariadasilva",
		"Maria D. Silva":     "mariadsilva",
		"  Conceição Ñuñez ": "conceicaonunez",
		"Turma 3B":           "turma3b",
		"---":                "",
	}
	for input, expected := range cases {
		assert.Equal(t, expected, NormalizeName(input), input)
	}
}

func TestNormalizeNameIdempotent(t *testing.T) {
	for _, name := range []string{"José Álves-Silva", "Ana Luíza O'Neill", "ÉDER 2º", ""} {
		once := NormalizeName(name)
		assert.Equal(t, once, NormalizeName(once), name)
	}
}

func TestSameName(t *testing.T) {
	assert.True(t, SameName("Maria da Silva", "MARIA DA SILVA"))
	assert.True(t, SameName("MARIA DA SILVA", "Maria da Silva"))
	assert.False(t, SameName("Maria da Silva", "Maria D. Silva"))
	assert.True(t, SameName("Maria D. Silva", "maria d silva"))
	assert.False(t, SameName("João Souza", "Joana Souza"))
}
