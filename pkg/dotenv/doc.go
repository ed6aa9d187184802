// Package dotenv loads convenience values from a local .env file for
// source/dev runs. It shares the shell loader's contract - merge KEY=VALUE
// pairs into process-wide state, never fail - but with inverted precedence:
// the file never overwrites a value already present in the environment.
package dotenv
