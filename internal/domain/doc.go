// Package domain defines the data shapes and contracts shared by the export
// workflow: characters, animation descriptors, export payloads, monitor
// statuses, and the interfaces the worker depends on.
//
// Types live in the types subpackage and interfaces in the interfaces
// subpackage; both are re-exported here through aliases.
package domain
