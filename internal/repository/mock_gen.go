package repository

//go:generate mockgen -source=./catalog.go -destination=../mocks/mock_catalog_repository.go -package=mocks CatalogRepositoryIface
//go:generate mockgen -source=./user_directory.go -destination=../mocks/mock_user_directory.go -package=mocks UserDirectoryIface
//go:generate mockgen -source=./audit_log.go -destination=../mocks/mock_audit_log_repository.go -package=mocks CatalogAuditLogRepositoryIface
