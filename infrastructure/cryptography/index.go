package cryptography

var CryptoHasher Hasher = argonHasher{}
