package utils

const TCP string = "tcp"
