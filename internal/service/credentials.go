package service

// credentialsMatch compares a stored credential with the one supplied at
// login time.
//
// Comparison is plain string equality: passwords are stored exactly as
// supplied, for behavioral parity with the system this service replaces.
// Every credential check in the package goes through this one function so a
// hash-and-compare scheme can be dropped in without touching callers.
var credentialsMatch = func(stored, supplied string) bool {
	return stored == supplied
}
