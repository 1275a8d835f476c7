package icons

//go:generate go run ../../tools/icongen -manifest manifest.yaml -out icons_gen.go
