// Package store exports finished transaction reports to disk and reads them
// back.
//
// Reports are serialised as indented JSON and written atomically (temp file
// in the target directory, then rename). When the store carries a
// passphrase the JSON is sealed with crypto.Seal before writing; LoadReport
// detects sealed files and opens them with the same passphrase.
package store
