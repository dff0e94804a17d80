// Package jqapi holds the documented jQuery API as data.
//
// A Catalog lists every method, property and static function together with
// its signatures, the jQuery version each signature was added in and the
// deprecation state of the entry. The builder in package jquery checks calls
// against it, the code generator emits one Go method per instance method from
// it, and the deprecation linter reads its flags.
//
// The embedded catalog is returned by Default. Alternative catalogs can be
// read with Load or LoadFile; they must pass Validate.
package jqapi
