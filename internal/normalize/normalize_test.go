package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestCamelToSnake(t *testing.T) {
	cases := map[string]string{
		"firstName":         "first_name",
		"creditHours":       "credit_hours",
		"dissertationTitle": "dissertation_title",
		"already_snake":     "already_snake",
		"year":              "year",
		"linkedinURL":       "linkedin_url",
	}
	for in, want := range cases {
		assert.Equal(t, want, CamelToSnake(in), in)
	}
}

func TestSnakeBody(t *testing.T) {
	body := []byte(`{"firstName":"Ada","last_name":"Lovelace","isResearch":true}`)
	out := gjson.ParseBytes(SnakeBody(body))
	assert.Equal(t, "Ada", out.Get("first_name").String())
	assert.Equal(t, "Lovelace", out.Get("last_name").String())
	assert.True(t, out.Get("is_research").Bool())
}

func TestDegreeLevelAliases(t *testing.T) {
	cases := map[string]string{
		"Masters":         "Master's",
		"Master's Degree": "Master's",
		"Master's":        "Master's",
		"Doctoral":        "Doctorate",
		"Doctoral Degree": "Doctorate",
		"PhD":             "Doctorate",
		"Ph.D":            "Doctorate",
		"Ph.D.":           "Doctorate",
		"  PhD  ":         "Doctorate",
		"Doctorate":       "Doctorate",
		"Bachelors":       "Bachelors", // unmapped passes through
		"phd":             "phd",       // matching is case-sensitive
	}
	for in, want := range cases {
		assert.Equal(t, want, DegreeLevel(in), in)
	}
}

func TestDepartmentField(t *testing.T) {
	get := func(doc string) DepartmentRef {
		return DepartmentField(gjson.Parse(doc).Get("department"))
	}

	ref := get(`{"department": 7}`)
	if assert.NotNil(t, ref.ID) {
		assert.Equal(t, uint(7), *ref.ID)
	}

	ref = get(`{"department": "12"}`)
	if assert.NotNil(t, ref.ID) {
		assert.Equal(t, uint(12), *ref.ID)
	}

	ref = get(`{"department": {"id": 3, "name": "Physics"}}`)
	if assert.NotNil(t, ref.ID) {
		assert.Equal(t, uint(3), *ref.ID)
	}

	ref = get(`{"department": "Computer Science"}`)
	assert.Nil(t, ref.ID)
	assert.Equal(t, "Computer Science", ref.Name)

	assert.True(t, get(`{"department": ""}`).IsNull())
	assert.True(t, get(`{"department": null}`).IsNull())
	assert.True(t, get(`{}`).IsNull())
}

func TestCreditsAliasPrecedence(t *testing.T) {
	val := func(doc string) *float64 {
		v, err := Credits(gjson.Parse(doc))
		assert.NoError(t, err)
		return v
	}

	// creditHours beats credit_hours when credits is absent.
	v := val(`{"creditHours": 3, "credit_hours": 4}`)
	if assert.NotNil(t, v) {
		assert.Equal(t, 3.0, *v)
	}

	v = val(`{"credits": 2.5, "creditHours": 3}`)
	if assert.NotNil(t, v) {
		assert.Equal(t, 2.5, *v)
	}

	v = val(`{"credit_hours": "4.5"}`)
	if assert.NotNil(t, v) {
		assert.Equal(t, 4.5, *v)
	}

	assert.Nil(t, val(`{}`))
	assert.Nil(t, val(`{"credits": null}`))

	_, err := Credits(gjson.Parse(`{"credits": "three"}`))
	assert.ErrorIs(t, err, ErrNotANumber)
}

func TestYear(t *testing.T) {
	year := func(doc string) (*int, error) {
		return Year(gjson.Parse(doc).Get("year_completed"))
	}

	y, err := year(`{"year_completed": 2019}`)
	assert.NoError(t, err)
	if assert.NotNil(t, y) {
		assert.Equal(t, 2019, *y)
	}

	y, err = year(`{"year_completed": "2021"}`)
	assert.NoError(t, err)
	if assert.NotNil(t, y) {
		assert.Equal(t, 2021, *y)
	}

	y, err = year(`{"year_completed": ""}`)
	assert.NoError(t, err)
	assert.Nil(t, y)

	y, err = year(`{"year_completed": null}`)
	assert.NoError(t, err)
	assert.Nil(t, y)

	_, err = year(`{"year_completed": "soon"}`)
	assert.ErrorIs(t, err, ErrNotAYear)
}

func TestWorkPreference(t *testing.T) {
	pref := func(doc string) []string {
		return WorkPreference(gjson.Parse(doc).Get("work_preference"))
	}

	assert.Equal(t, []string{"remote", "hybrid"}, pref(`{"work_preference": ["remote", "hybrid"]}`))
	assert.Equal(t, []string{"remote", "hybrid"}, pref(`{"work_preference": "[\"remote\", \"hybrid\"]"}`))
	assert.Equal(t, []string{"remote", "hybrid"}, pref(`{"work_preference": "remote, hybrid"}`))
	assert.Equal(t, []string{"onsite"}, pref(`{"work_preference": " onsite ,  "}`))
	assert.Equal(t, []string{}, pref(`{"work_preference": null}`))
	assert.Equal(t, []string{}, pref(`{}`))
}
