package files

var EncodeFailure = encodeFailure
