package repository

import "gorm.io/gorm"

// 单页上限，避免一次查询拉全表。
const maxPageSize = 100

// applyPagination 规范化页码与页大小后应用 LIMIT/OFFSET；pageSize<=0 表示不分页。
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	if page < 1 {
		page = 1
	}
	return query.Limit(pageSize).Offset((page - 1) * pageSize)
}
