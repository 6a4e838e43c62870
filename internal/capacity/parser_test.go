package capacity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/contract-capacity-api/pkg/errors"
)

func TestParseWorkloadSemicolon(t *testing.T) {
	content := "nome;carga mensal\r\nMaria da Silva;160\r\n\r\nJosé Álves;80,5\r\n"

	result, err := ParseWorkload(content)
	require.NoError(t, err)
	assert.Equal(t, ";", result.Delimiter)
	assert.Equal(t, 0, result.NameColumn)
	assert.Equal(t, 1, result.HoursColumn)
	assert.Equal(t, []WorkloadRow{
		{Name: "Maria da Silva", Hours: 160},
		{Name: "José Álves", Hours: 80.5},
	}, result.Rows)
	assert.Zero(t, result.Skipped)
}

func TestParseWorkloadComma(t *testing.T) {
	content := "nome,carga mensal\nMaria da Silva,160\nJoão,40.25"

	result, err := ParseWorkload(content)
	require.NoError(t, err)
	assert.Equal(t, ",", result.Delimiter)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, 40.25, result.Rows[1].Hours)
}

func TestParseWorkloadColumnOrderAndQuotes(t *testing.T) {
	content := `"Matrícula";"Total Horas";"Docente Responsável"` + "\n" +
		`"001";"120";"Ana Paula"` + "\n" +
		`"002";"96";" Bruno "`

	result, err := ParseWorkload(content)
	require.NoError(t, err)
	assert.Equal(t, 2, result.NameColumn)
	assert.Equal(t, 1, result.HoursColumn)
	assert.Equal(t, []WorkloadRow{
		{Name: "Ana Paula", Hours: 120},
		{Name: "Bruno", Hours: 96},
	}, result.Rows)
}

func TestParseWorkloadSkipsMalformedRows(t *testing.T) {
	content := "nome,horas\n" +
		"Ana,80\n" +
		`"," ,"abc"` + "\n" +
		",40\n" +
		"Carlos,abc\n" +
		"Diego\n" +
		"Eva,-8\n" +
		"Fábio,NaN\n" +
		"Gil,12"

	result, err := ParseWorkload(content)
	require.NoError(t, err)
	assert.Equal(t, []WorkloadRow{{Name: "Ana", Hours: 80}, {Name: "Gil", Hours: 12}}, result.Rows)
	assert.Equal(t, 6, result.Skipped)
	assert.Equal(t, 8, len(result.Rows)+result.Skipped)
}

func TestParseWorkloadEmptyInput(t *testing.T) {
	for _, content := range []string{"", "\n\r\n   \n", "\t"} {
		_, err := ParseWorkload(content)
		require.Error(t, err)
		assert.True(t, errors.Is(err, appErrors.ErrEmptyInput), "%q", content)
	}
}

func TestParseWorkloadColumnNotFound(t *testing.T) {
	_, err := ParseWorkload("codigo;valor\n1;2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrColumnNotFound))

	var missing *MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{ColumnName, ColumnHours}, missing.Columns)

	_, err = ParseWorkload("professor;matricula\nAna;1")
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{ColumnHours}, missing.Columns)
}

func TestParseWorkloadHeaderOnly(t *testing.T) {
	result, err := ParseWorkload("instrutor;total\n")
	require.NoError(t, err)
	assert.Empty(t, result.Rows)
	assert.Zero(t, result.Skipped)
}

func TestParseWorkloadSkipsHexFigures(t *testing.T) {
	content := "nome;carga mensal\nAna;0x1p4\nBruno;-0X10\nCarla;0,5\nDiego;016"

	result, err := ParseWorkload(content)
	require.NoError(t, err)
	assert.Equal(t, []WorkloadRow{{Name: "Carla", Hours: 0.5}, {Name: "Diego", Hours: 16}}, result.Rows)
	assert.Equal(t, 2, result.Skipped)
}
