// Package auth implements the credential ports: bcrypt password hashing and HS512 JWT bearer tokens.
package auth
