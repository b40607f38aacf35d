package domain

var Tables = []interface{}{
	// System
	&SysConfig{},
	&SysOpr{},
	// Catalog
	&Product{},
}
