package openstep

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type address struct {
	City string
	Zip  string `openstep:"zip_code"`
}

type person struct {
	Name      string
	Age       int
	Height    float64
	Active    bool
	Nicknames []string
	Badge     []byte
	Home      address
	Offices   []address
	Secret    string `openstep:"-"`
}

func mustDecode(t *testing.T, doc string) Value {
	t.Helper()
	v, err := DecodeString(doc)
	require.NoError(t, err)
	return v
}

func TestUnmarshalScalarFields(t *testing.T) {
	v := mustDecode(t, `{
		Name = "Ada Lovelace";
		Age = 36;
		Height = 1.68;
		Active = true;
	}`)

	var p person
	require.NoError(t, Unmarshal(v, &p))
	assert.Equal(t, "Ada Lovelace", p.Name)
	assert.Equal(t, 36, p.Age)
	assert.InDelta(t, 1.68, p.Height, 1e-9)
	assert.True(t, p.Active)
}

func TestUnmarshalSliceAndNestedStruct(t *testing.T) {
	v := mustDecode(t, `{
		Name = "Grace Hopper";
		Age = 85;
		Height = 1.6;
		Active = false;
		Nicknames = ("Amazing Grace", "The First Lady of Software");
		Home = { City = "Arlington"; zip_code = "22201"; };
		Offices = ({ City = "NYC"; zip_code = "10001"; }, { City = "DC"; zip_code = "20001"; });
	}`)

	var p person
	require.NoError(t, Unmarshal(v, &p))
	assert.Equal(t, []string{"Amazing Grace", "The First Lady of Software"}, p.Nicknames)
	assert.Equal(t, "Arlington", p.Home.City)
	assert.Equal(t, "22201", p.Home.Zip)
	require.Len(t, p.Offices, 2)
	assert.Equal(t, "NYC", p.Offices[0].City)
	assert.Equal(t, "DC", p.Offices[1].City)
}

func TestUnmarshalDataField(t *testing.T) {
	v := mustDecode(t, `{ Name = "x"; Age = 1; Height = 1; Active = true; Badge = <deadbeef>; }`)
	var p person
	require.NoError(t, Unmarshal(v, &p))
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, p.Badge)
}

func TestUnmarshalBase64StringIntoByteSlice(t *testing.T) {
	v := mustDecode(t, `{ Name = "x"; Age = 1; Height = 1; Active = true; Badge = "3q2+7w=="; }`)
	var p person
	require.NoError(t, Unmarshal(v, &p))
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, p.Badge)
}

func TestUnmarshalTagExcludesField(t *testing.T) {
	v := mustDecode(t, `{ Name = "x"; Age = 1; Height = 1; Active = true; }`)
	var p person
	require.NoError(t, Unmarshal(v, &p))
	assert.Empty(t, p.Secret)
}

func TestUnmarshalUnknownFieldErrors(t *testing.T) {
	v := mustDecode(t, `{ Name = "x"; Age = 1; Height = 1; Active = true; Nonexistent = 1; }`)
	var p person
	err := Unmarshal(v, &p)
	assert.Error(t, err)
}

func TestUnmarshalRequiresPointerToStruct(t *testing.T) {
	v := mustDecode(t, `{}`)
	var p person
	assert.Error(t, Unmarshal(v, p))
	assert.Error(t, Unmarshal(v, &[]int{}))
}

func TestUnmarshalRequiresDictionary(t *testing.T) {
	v := mustDecode(t, `"just a string"`)
	var p person
	assert.Error(t, Unmarshal(v, &p))
}

func TestUnmarshalIntOutOfRangeErrors(t *testing.T) {
	type small struct {
		N int8
	}
	v := mustDecode(t, `{ N = 1000; }`)
	var s small
	assert.Error(t, Unmarshal(v, &s))
}

type hexColor struct {
	R, G, B byte
}

func (c *hexColor) UnmarshalText(text []byte) error {
	b, err := hex.DecodeString(string(text))
	if err != nil || len(b) != 3 {
		return fmt.Errorf("hexColor: invalid color %q", text)
	}
	c.R, c.G, c.B = b[0], b[1], b[2]
	return nil
}

type themed struct {
	Color hexColor
}

func TestUnmarshalTextUnmarshaler(t *testing.T) {
	v := mustDecode(t, `{ Color = "ff00ff"; }`)
	var th themed
	require.NoError(t, Unmarshal(v, &th))
	assert.Equal(t, byte(0xFF), th.Color.R)
	assert.Equal(t, byte(0x00), th.Color.G)
	assert.Equal(t, byte(0xFF), th.Color.B)
}
