package post

import "errors"

// ErrNullIdentifier is returned while decoding a CreatePostRequest whose
// identifier is an explicit JSON null.
var ErrNullIdentifier = errors.New("identifier must not be null")
