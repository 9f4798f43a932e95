package models

// ConditionCode is the provider's numeric (WMO) weather condition classification
type ConditionCode int

// IconCategory is the symbolic name of a weather icon
type IconCategory string

// Icon categories. IconUnknown is returned for codes outside the known table
const (
	IconSun               IconCategory = "sun"
	IconCloudSun          IconCategory = "cloud-sun"
	IconCloud             IconCategory = "cloud"
	IconSmog              IconCategory = "smog"
	IconCloudShowersHeavy IconCategory = "cloud-showers-heavy"
	IconSnowflake         IconCategory = "snowflake"
	IconCloudBolt         IconCategory = "cloud-bolt"
	IconUnknown           IconCategory = "unknown"
)

// String returns the category name
func (c IconCategory) String() string {
	return string(c)
}
