package app

// OpenAPISpec is the OpenAPI document served at /docs/openapi.yaml
var OpenAPISpec = []byte(`openapi: "3.0.3"
info:
  title: SkyHealth KPI Gateway
  description: Aggregates marketing KPIs from Meta Graph API, GA4, YouTube and LinkedIn behind one authenticated API.
  version: "1.0.0"
security:
  - bearerAuth: []
paths:
  /healthz:
    get:
      summary: Liveness probe
      security: []
      responses:
        "200":
          description: Service is up
  /readyz:
    get:
      summary: Readiness probe
      security: []
      responses:
        "200":
          description: Service is ready
  /kpi/social:
    get:
      summary: Social KPIs for one Instagram business account or Facebook page
      parameters:
        - name: platform
          in: query
          required: true
          schema:
            type: string
            enum: [instagram, facebook]
        - name: accountId
          in: query
          required: true
          schema:
            type: string
        - name: accessToken
          in: query
          description: Overrides the configured Meta access token
          schema:
            type: string
        - name: postLimit
          in: query
          description: Maximum number of posts to fetch (default 50)
          schema:
            type: integer
      responses:
        "200":
          description: Account summary, posts, rankings and engagement statistics
        "400":
          description: invalid_platform, missing_accountId or missing_accessToken
        "500":
          description: social_kpi_failed with upstream detail
  /kpi/ga4:
    get:
      summary: GA4 sessions/users totals and top pages
      parameters:
        - name: property_id
          in: query
          schema:
            type: string
        - name: top_limit
          in: query
          schema:
            type: integer
      responses:
        "200":
          description: 7d/28d totals plus top pages by sessions
        "400":
          description: missing_property_id
        "500":
          description: ga4_failed
  /kpi/channels:
    get:
      summary: Per-channel stats for YouTube, LinkedIn and TikTok
      parameters:
        - name: youtube
          in: query
          schema:
            type: string
        - name: linkedin
          in: query
          schema:
            type: string
        - name: tiktok
          in: query
          schema:
            type: string
      responses:
        "200":
          description: Stats per requested platform; failures reported per platform in errors
  /prospects:
    get:
      summary: Static demo prospects listing
      parameters:
        - name: limit
          in: query
          schema:
            type: integer
      responses:
        "200":
          description: Demo prospect records
components:
  securitySchemes:
    bearerAuth:
      type: http
      scheme: bearer
`)
