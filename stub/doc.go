// Package stub renders the declarations of a native class's public surface
// into Python type-stub (.pyi) text.
//
// # Architecture
//
// Rendering is split in two layers:
//  1. Registration descriptors (MemberInfo, MethodInfo, NewInfo) describe a
//     declaration with deferred type producers.
//  2. Declarations (MemberDef, MethodDef, NewDef) hold concrete TypeInfo
//     values and render themselves against a Context.
//
// Conversion from descriptor to declaration resolves every TypeSource once.
// Declarations are immutable afterwards and may be rendered any number of
// times, at any nesting depth.
//
// # Indentation
//
// Nesting depth is carried by an explicit Context value. Whoever emits a
// class body passes ctx.Nested() to the declarations inside it; nothing in
// this package keeps global indentation state.
package stub
