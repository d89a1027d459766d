// Package physfs provides a PhysicsFS-style virtual filesystem facade
// backed by go-billy filesystems.
//
// The package follows the PhysicsFS model: an ordered search path of
// mounted directories (or arbitrary billy filesystems) resolves all read
// operations, while write operations are sandboxed to a single write
// directory configured independently of the search path. Mount points
// virtualize where each backing filesystem appears in the unified tree.
//
// All real filesystem engineering (path handling, chroot jails, in-memory
// trees) is owned by go-billy; this package is glue plus one piece of
// original logic, the buffered File adapter, which bridges billy's
// block-oriented handle interface to byte-at-a-time streaming with
// logical-position seeks.
//
// The package-level functions operate on a process-wide instance created
// by Init and released by Deinit, mirroring the PhysicsFS global model:
//
//	if err := physfs.Init(); err != nil {
//		log.Fatal(err)
//	}
//	defer physfs.Deinit()
//
//	if err := physfs.Mount("/usr/share/game/data", "/data", true); err != nil {
//		log.Fatal(err)
//	}
//	f, err := physfs.OpenRead("/data/config.txt")
//
// Callers that prefer explicit state can construct independent instances
// with New and use the equivalent methods on *VFS.
//
// Neither *VFS nor *File performs internal locking. An instance and the
// files opened from it are single-owner, single-thread-at-a-time; guarding
// concurrent use is the caller's responsibility.
package physfs
