/*
Package catalog provides the question catalogs of the trade-in wizard.

It ships the default questionnaire used when a console has no dedicated one,
validates catalogs, parses them from YAML or JSON files and resolves the
catalog of a console through a single two-tier lookup:

	perConsoleCatalog ?? defaultCatalog
*/
package catalog
