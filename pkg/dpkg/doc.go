// Package dpkg reads installed-package records from the dpkg database.
//
// The [Source] interface is the injection point for the blame pipeline:
// the production implementation ([StatusFile]) parses the dpkg status file
// on disk, while tests supply synthetic record sets without touching a
// real system.
//
// Only packages whose Status field reports them as installed are emitted.
// Installed-Size is converted from dpkg's KiB convention to bytes.
// Depends and Pre-Depends fields are parsed into OR-groups of alternative
// names, with version constraints and architecture qualifiers stripped;
// deciding whether an alternative is actually installed is left to the
// graph builder.
package dpkg
