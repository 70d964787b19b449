// Package derive builds record field declarations from existing Go
// struct types.
//
// It uses golang.org/x/tools/go/packages with go/types to read struct
// declarations in source order, so a schema can be maintained as an
// ordinary annotated Go struct and fed to record.Define.
//
// Recognized struct tags:
//   - record:"-"        skip the field
//   - record:"internal" mark the field internal
//   - record:"hashed"   opt the field into the generated hash
//   - default:"<lit>"   default value, parsed by the field's basic kind
//
// Unexported fields are internal by default, mirroring the underscore
// name rule of declared schemas.
package derive
