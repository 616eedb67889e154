// Package helpers holds small shared utilities; currently the logrus setup.
package helpers
