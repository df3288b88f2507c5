// Package xmltree decodes an XML document into a generic element tree.
//
// Oracle Forms, menu and object library exports are large attribute-heavy
// documents whose schema varies between Forms versions. The extractors do
// not bind them to structs; they walk a Node tree and read the few
// attributes they need, tolerating anything else.
//
// Documents declaring a legacy encoding in their prolog (WINDOWS-1252,
// ISO-8859-1, ...) are transcoded to UTF-8 while decoding.
//
// A Node keeps only the character data that precedes its first child
// element, which is where Forms exports put trigger and program unit code.
package xmltree
