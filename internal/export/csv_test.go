package export

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conectone/internal/errors"
)

type contact struct {
	Phone string
	Email string
}

type pupil struct {
	ID          uuid.UUID
	AdmissionNo string
	FirstName   string
	LastName    string
	Guardian    contact
	Enrolled    time.Time
	Active      bool
	Grade       int
}

func samplePupil(t *testing.T) pupil {
	t.Helper()

	return pupil{
		ID:          uuid.MustParse("018f3a2e-5b7c-7c4d-9e1f-2a3b4c5d6e7f"),
		AdmissionNo: "ADM-0042",
		FirstName:   "Thabo",
		LastName:    "Nkosi",
		Guardian:    contact{Phone: "+27115550100", Email: "guardian@example.com"},
		Enrolled:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Active:      true,
		Grade:       7,
	}
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	t.Parallel()

	original := samplePupil(t)

	line, err := Marshal(original)
	require.NoError(t, err)

	var decoded pupil
	require.NoError(t, Unmarshal(strings.Split(line, ","), &decoded))
	assert.Equal(t, original, decoded)
}

func TestHeadersMatchMarshalArity(t *testing.T) {
	t.Parallel()

	p := samplePupil(t)

	header, err := Headers(p)
	require.NoError(t, err)
	line, err := Marshal(p)
	require.NoError(t, err)

	assert.Len(t, strings.Split(header, ","), len(strings.Split(line, ",")))
	assert.Contains(t, header, "Guardian.Phone")
	assert.Contains(t, header, "Guardian.Email")
}

func TestMarshalFloat32Precision(t *testing.T) {
	t.Parallel()

	type row struct {
		Weight float32
		Score  float64
	}

	line, err := Marshal(row{Weight: 0.1, Score: 0.1})
	require.NoError(t, err)

	assert.Equal(t, "0.1,0.1", line)
}

func TestNilNestedPointerKeepsAlignment(t *testing.T) {
	t.Parallel()

	type row struct {
		Name     string
		Guardian *contact
		Grade    int
	}

	header, err := Headers(row{})
	require.NoError(t, err)
	assert.Equal(t, "Name,Guardian.Phone,Guardian.Email,Grade", header)

	line, err := Marshal(row{Name: "Zanele", Grade: 7})
	require.NoError(t, err)
	assert.Equal(t, "Zanele,,,7", line)

	var decoded row
	require.NoError(t, Unmarshal(strings.Split(line, ","), &decoded))
	require.NotNil(t, decoded.Guardian)
	assert.Equal(t, "Zanele", decoded.Name)
	assert.Equal(t, contact{}, *decoded.Guardian)
	assert.Equal(t, 7, decoded.Grade)
}

func TestMarshalQuotesAndSubstitutions(t *testing.T) {
	t.Parallel()

	type row struct {
		Name string
		City string
	}

	line, err := Marshal(row{Name: `Dlamini, "JB"`, City: "Curaçao"})
	require.NoError(t, err)

	assert.Equal(t, `"Dlamini, ""JB""",Curacao`, line)
}

func TestMarshalFieldNameProjections(t *testing.T) {
	t.Parallel()

	p := samplePupil(t)

	included, err := Headers(p, IncludeFields("FirstName", "LastName"))
	require.NoError(t, err)
	assert.Equal(t, "FirstName,LastName", included)

	excluded, err := Headers(p, ExcludeFields("ID", "Guardian", "Enrolled", "Active", "Grade"))
	require.NoError(t, err)
	assert.Equal(t, "AdmissionNo,FirstName,LastName", excluded)

	_, err = Headers(p, IncludeFields("NoSuchField"))
	require.Error(t, err)
}

func TestMarshalIndexProjections(t *testing.T) {
	t.Parallel()

	p := samplePupil(t)

	line, err := Marshal(p, IncludeIndexes(1, 2))
	require.NoError(t, err)
	assert.Equal(t, "ADM-0042,Thabo", line)

	header, err := Headers(p, ExcludeIndexes(0, 4, 5, 6, 7))
	require.NoError(t, err)
	assert.Equal(t, "AdmissionNo,FirstName,LastName", header)

	_, err = Marshal(p, IncludeIndexes(99))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestUnmarshalTooFewValues(t *testing.T) {
	t.Parallel()

	var decoded pupil
	err := Unmarshal([]string{uuid.NewString(), "ADM-0001"}, &decoded)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFieldCount))
}

func TestUnmarshalCoercionFailure(t *testing.T) {
	t.Parallel()

	type row struct {
		Name  string
		Count int
	}

	var decoded row
	err := Unmarshal([]string{"x", "not-a-number"}, &decoded)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCoerce))
	assert.Contains(t, err.Error(), "Count")
}

func TestUnmarshalRequiresStructPointer(t *testing.T) {
	t.Parallel()

	var decoded pupil
	require.Error(t, Unmarshal([]string{"a"}, decoded))

	var n int
	require.Error(t, Unmarshal([]string{"1"}, &n))
}

func TestDocument(t *testing.T) {
	t.Parallel()

	type row struct {
		Name  string
		Grade int
	}

	doc, err := Document([]row{{Name: "Zanele", Grade: 7}, {Name: "Sipho", Grade: 8}})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(doc), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name,Grade", lines[0])
	assert.Equal(t, "Zanele,7", lines[1])
	assert.Equal(t, "Sipho,8", lines[2])
}

func TestDocumentEmptySlice(t *testing.T) {
	t.Parallel()

	doc, err := Document([]pupil{})
	require.NoError(t, err)
	assert.Empty(t, doc)
}
