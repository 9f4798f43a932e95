// Package icons maps weather condition codes to icon categories.
//
// The table is built once at package initialisation and never mutated, so every
// function here is safe for concurrent use.
package icons

import (
	"fmt"
	"path"
	"sort"

	"weather-dashboard/models"
)

// mapping associates a set of condition codes with one category
type mapping struct {
	codes    []models.ConditionCode
	category models.IconCategory
}

var mappings = []mapping{
	{[]models.ConditionCode{0, 1}, models.IconSun},
	{[]models.ConditionCode{2}, models.IconCloudSun},
	{[]models.ConditionCode{3}, models.IconCloud},
	{[]models.ConditionCode{45, 48}, models.IconSmog},
	{[]models.ConditionCode{51, 53, 55, 56, 57, 61, 63, 65, 66, 67, 80, 81, 82}, models.IconCloudShowersHeavy},
	{[]models.ConditionCode{71, 73, 75, 77, 85, 86}, models.IconSnowflake},
	{[]models.ConditionCode{95, 96, 99}, models.IconCloudBolt},
}

var table = buildTable(mappings)

// buildTable expands each code set into single-code entries. A code listed
// twice is a programming error.
func buildTable(ms []mapping) map[models.ConditionCode]models.IconCategory {
	t := make(map[models.ConditionCode]models.IconCategory)
	for _, m := range ms {
		for _, code := range m.codes {
			if existing, dup := t[code]; dup {
				panic(fmt.Sprintf("icons: code %d mapped to both %s and %s", code, existing, m.category))
			}
			t[code] = m.category
		}
	}
	return t
}

// Resolve returns the icon category for a condition code. Unknown codes yield
// models.IconUnknown and an unknown_condition_code error.
func Resolve(code models.ConditionCode) (models.IconCategory, error) {
	if category, ok := table[code]; ok {
		return category, nil
	}
	return models.IconUnknown, models.NewAppError(
		models.ErrCodeUnknownCondition,
		fmt.Sprintf("no icon for condition code %d", code),
		nil,
	)
}

// Lookup is Resolve without the error: unknown codes map to models.IconUnknown.
func Lookup(code models.ConditionCode) models.IconCategory {
	category, _ := Resolve(code)
	return category
}

// Known reports whether the code is in the table.
func Known(code models.ConditionCode) bool {
	_, ok := table[code]
	return ok
}

// AssetPath returns the icon asset reference for a code, e.g. "icons/sun.svg".
func AssetPath(dir string, code models.ConditionCode) string {
	return path.Join(dir, Lookup(code).String()+".svg")
}

// Codes returns every known condition code in ascending order.
func Codes() []models.ConditionCode {
	codes := make([]models.ConditionCode, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
