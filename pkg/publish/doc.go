// Package publish exports the component gallery as static files.
//
// A publish writes two objects: index.html, the gallery page without the
// live playground, and styles.json, the computed style and mapping report
// of every example. Objects go to an S3 compatible bucket through
// NewS3Client, or to a local directory through DirPutter.
package publish
