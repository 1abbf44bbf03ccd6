// Package showcase keeps the registry of renderable components and builds
// the gallery page from it.
//
// A Registry starts with the six primitives and their built-in examples;
// FromConfig adds the components declared in styled.yaml, each a primitive
// re-wrapped with its configured options. The preview server renders from
// the registry on every request, and the publisher uses it to export a
// static gallery and the computed style of every example.
package showcase
