package main

// Import the language packages to register them
import (
	_ "github.com/alburdette619/docthis/languages/typescript"
)
