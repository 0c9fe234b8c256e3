// Package generator renders new NestJS projects from embedded collection
// templates. It powers the "stencil new" command, producing the project
// skeleton (package.json, tsconfig, Nest bootstrap, application module) for
// the selected collection with template variables filled in.
package generator
