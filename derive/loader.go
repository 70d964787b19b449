package derive

import (
	"errors"
	"fmt"
	"go/types"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"record-forge/internal/common"
	"record-forge/record"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Declaration is the schema derived from one struct type, ready to be
// passed to record.Define via record.Fields.
type Declaration struct {
	// TypeName is the struct type's name.
	TypeName string
	// PkgPath is the import path of the defining package.
	PkgPath string
	// Fields are the derived declarations, in source order.
	Fields []record.FieldDecl
}

// Load loads the given package patterns and derives a declaration from
// every exported struct type found.
func Load(patterns ...string) ([]Declaration, error) {
	if _, ok := common.First(patterns); !ok {
		return nil, errors.New("no package patterns requested")
	}

	cfg := &packages.Config{Mode: LoadMode}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	var decls []Declaration
	for _, pkg := range pkgs {
		pkgDecls, err := processPackage(pkg)
		if err != nil {
			return nil, err
		}
		decls = append(decls, pkgDecls...)
	}
	return decls, nil
}

// processPackage extracts a declaration from each exported struct type.
func processPackage(pkg *packages.Package) ([]Declaration, error) {
	var decls []Declaration

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)

		typeName, ok := obj.(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		st, ok := typeName.Type().Underlying().(*types.Struct)
		if !ok {
			continue
		}

		fields, err := structFields(st)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", pkg.PkgPath, name, err)
		}

		decls = append(decls, Declaration{
			TypeName: name,
			PkgPath:  pkg.PkgPath,
			Fields:   fields,
		})
	}
	return decls, nil
}

// structFields derives field declarations in source order.
func structFields(st *types.Struct) ([]record.FieldDecl, error) {
	var fields []record.FieldDecl

	for i := 0; i < st.NumFields(); i++ {
		fld := st.Field(i)
		tag := reflect.StructTag(st.Tag(i))

		marks := strings.Split(tag.Get("record"), ",")
		if marks[0] == "-" {
			continue
		}

		expr := types.TypeString(fld.Type(), func(p *types.Package) string {
			return common.PkgAlias(p.Path())
		})
		if hasMark(marks, "hashed") {
			expr = record.Hashed(expr)
		}
		if !fld.Exported() || hasMark(marks, "internal") {
			expr = record.Internal(expr)
		}

		lit, hasDefault := tag.Lookup("default")
		if !hasDefault {
			fields = append(fields, record.F(fld.Name(), expr))
			continue
		}

		def, err := parseDefault(fld.Type(), lit)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fld.Name(), err)
		}
		fields = append(fields, record.D(fld.Name(), expr, def))
	}
	return fields, nil
}

func hasMark(marks []string, want string) bool {
	for _, m := range marks {
		if m == want {
			return true
		}
	}
	return false
}

// parseDefault parses a default tag literal by the field's basic kind.
func parseDefault(t types.Type, lit string) (any, error) {
	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return nil, fmt.Errorf("default tags only support basic kinds, not %s", t)
	}

	switch info := basic.Info(); {
	case info&types.IsBoolean != 0:
		return strconv.ParseBool(lit)
	case info&types.IsInteger != 0:
		return strconv.Atoi(lit)
	case info&types.IsFloat != 0:
		return strconv.ParseFloat(lit, 64)
	case info&types.IsString != 0:
		return lit, nil
	default:
		return nil, fmt.Errorf("default tags do not support %s", basic)
	}
}
