package models

// FacetCount — значение поля и количество документов с ним.
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FilterStats — распределения по category/project/team для панели фильтров.
type FilterStats struct {
	Categories []FacetCount `json:"categories"`
	Projects   []FacetCount `json:"projects"`
	Teams      []FacetCount `json:"teams"`
}
