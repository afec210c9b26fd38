// Package utils provides small helpers shared by the borrower search client
// and server: JSON response writing, the preconfigured resty client and trace
// id generation.
package utils
