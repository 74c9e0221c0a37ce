package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkmaster/internal/storage"
)

func pricedTemplate() *storage.Template {
	return &storage.Template{
		ID:   "tpl-price",
		Name: "Orçamento",
		Fields: []storage.Field{
			{ID: "f-labor", Label: "Mão de Obra", Type: storage.FieldPrice},
			{
				ID: "f-service", Label: "Serviço", Type: storage.FieldSelect,
				Options: []storage.Option{
					{ID: "opt-basic", Label: "Básica", Price: 100},
					{ID: "opt-full", Label: "Completa", Price: 200},
				},
			},
			{
				ID: "f-extras", Label: "Extras", Type: storage.FieldMultiselect,
				Options: []storage.Option{
					{ID: "opt-a", Label: "Polimento", Price: 10},
					{ID: "opt-b", Label: "Higienização", Price: 15},
				},
			},
			{
				ID: "f-simple", Label: "Tipo", Type: storage.FieldSelectSimple,
				Options: []storage.Option{
					{ID: "opt-t", Label: "Caminhão", Price: 999},
				},
			},
		},
	}
}

func TestTotal_MultiselectFollowsSelection(t *testing.T) {
	tpl := pricedTemplate()
	values := map[string]storage.Value{
		"f-extras": storage.OptionsValue([]string{"opt-a", "opt-b"}),
	}

	assert.Equal(t, 25.0, Total(tpl, values))

	values["f-extras"] = storage.OptionsValue([]string{"opt-b"})
	assert.Equal(t, 15.0, Total(tpl, values))
}

func TestTotal_DanglingOptionDegradesToZero(t *testing.T) {
	tpl := pricedTemplate()
	values := map[string]storage.Value{
		"f-service": storage.OptionValue("opt-deleted"),
		"f-extras":  storage.OptionsValue([]string{"opt-a", "opt-gone"}),
	}

	assert.Equal(t, 10.0, Total(tpl, values))
}

func TestTotal_PriceFieldParsesText(t *testing.T) {
	tpl := pricedTemplate()

	cases := []struct {
		raw  string
		want float64
	}{
		{"120.50", 120.50},
		{"0", 0},
		{"-50", 0},
		{"abc", 0},
		{"", 0},
	}

	for _, tc := range cases {
		values := map[string]storage.Value{
			"f-labor": storage.TextValue(tc.raw),
		}
		assert.Equal(t, tc.want, Total(tpl, values), "raw %q", tc.raw)
	}
}

func TestTotal_NeverNegative(t *testing.T) {
	tpl := pricedTemplate()

	values := map[string]storage.Value{
		"f-labor": storage.TextValue("-50"),
	}
	assert.GreaterOrEqual(t, Total(tpl, values), 0.0)

	// A negative price entry must not eat into other contributions either.
	values["f-service"] = storage.OptionValue("opt-basic")
	assert.Equal(t, 100.0, Total(tpl, values))
}

func TestTotal_SelectSimpleNeverContributes(t *testing.T) {
	tpl := pricedTemplate()
	values := map[string]storage.Value{
		"f-simple": storage.OptionValue("opt-t"),
	}

	assert.Zero(t, Total(tpl, values))
}

func TestTotal_EmptyStoreIsZero(t *testing.T) {
	assert.Zero(t, Total(pricedTemplate(), map[string]storage.Value{}))
}

func TestTotal_Deterministic(t *testing.T) {
	tpl := pricedTemplate()
	values := map[string]storage.Value{
		"f-labor":   storage.TextValue("50"),
		"f-service": storage.OptionValue("opt-full"),
		"f-extras":  storage.OptionsValue([]string{"opt-b", "opt-a"}),
	}

	first := Total(tpl, values)
	require.Equal(t, 275.0, first)

	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Total(tpl, values))
	}
}

func TestSessionTotal_TracksValueChanges(t *testing.T) {
	sess, err := StartRun(pricedTemplate())
	require.NoError(t, err)

	assert.Zero(t, sess.Total())

	sess.SetValue("f-service", storage.OptionValue("opt-basic"))
	assert.Equal(t, 100.0, sess.Total())

	sess.SetValue("f-service", storage.OptionValue("opt-full"))
	assert.Equal(t, 200.0, sess.Total())
}
