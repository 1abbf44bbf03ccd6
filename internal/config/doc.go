// Package config loads styled.yaml, the configuration shared by the
// styled CLI, the preview server and the publisher.
//
// The file declares preview server settings, the publish target and any
// number of styled components built on the primitives:
//
//	preview:
//	  port: 4100
//	  metrics: true
//	publish:
//	  bucket: design-system
//	  prefix: styled/
//	components:
//	  Heading:
//	    base: Text
//	    aliasPreset: text
//	    aliases: {sz: fontSize}
//	    defaultStyles: {fontWeight: "700"}
//	    customProps:
//	      muted: {color: "#888"}
//	    examples:
//	      - name: large
//	        props: {sz: 32, children: Hello}
//
// styled.yml and styled.json are accepted as well. Values are validated
// with go-playground/validator; failures are reported as *errors.StyledError
// with codes E100-E104.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    errors.PrintError(err)
//	    os.Exit(1)
//	}
//	heading := styled.Text.WithOptions(cfg.Components["Heading"].Options())
package config
