/*
Package ports defines the driven ports (interfaces) of the trade-in wizard.

These interfaces decouple the core logic from external implementations, allowing
the wizard to work with various storage backends, console sources and catalog
sources.

# Key Interfaces

  - ConsoleSource / ProductSource: read-only access to the storefront backend.
  - CatalogSource: per-console question catalogs (REST, YAML files, Loam).
  - SessionStore: persists wizard sessions.
  - ResultStore: persists the published trade-in state per shopper.
  - BlobStore: the key-value boundary holding the cart as a JSON string.
  - DistributedLocker: distributed locking for concurrent session access.
*/
package ports
